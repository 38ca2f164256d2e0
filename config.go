package kinematics

import (
	"io"
	"log/slog"

	"github.com/TheBitDrifter/table"
)

// Config holds package-wide defaults for storages and worlds
var Config config = config{
	logger: NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
}

type config struct {
	tableEvents table.TableEvents
	logger      Logger
}

// SetTableEvents configures the table event callbacks used by new archetypes
func (c *config) SetTableEvents(te table.TableEvents) {
	c.tableEvents = te
}

// SetLogger replaces the default logger handed to new worlds. A nil logger is ignored.
func (c *config) SetLogger(l Logger) {
	if l == nil {
		return
	}
	c.logger = l
}
