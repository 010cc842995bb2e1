package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// logEvent prepends a narration entry to the match event log, keeping the
// log bounded at game.EventLogCap entries (most recent first).
func logEvent(m *game.MatchState, message string) {
	ev := game.GameEvent{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
	m.EventLog = append([]game.GameEvent{ev}, m.EventLog...)
	if len(m.EventLog) > game.EventLogCap {
		m.EventLog = m.EventLog[:game.EventLogCap]
	}
}
