package loop

import (
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Game      *tetris.Game
	Logger    *zerolog.Logger
}

func newUpdateFrame(dt float64, game *tetris.Game, logger *zerolog.Logger) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Game:      game,
		Logger:    logger,
	}
}
