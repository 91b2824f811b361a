package scene

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/starship/asset"
	"github.com/lixenwraith/starship/constants"
	"github.com/lixenwraith/starship/engine"
	"github.com/lixenwraith/starship/render"
	"github.com/lixenwraith/starship/task"
)

// ErrSurfaceTooSmall is returned when the ship plus its border does not fit
var ErrSurfaceTooSmall = errors.New("surface too small for spaceship")

// Deps are the collaborators the tasks are built on
type Deps struct {
	Canvas   render.Canvas
	Store    *asset.Store
	Controls task.Controls
	Alerter  task.Alerter
	Rand     task.Rand
}

// Build loads the assets and creates the fixed task set in resume order:
// projectile from the centre, spaceship centred above the bottom border, then the stars
// Any asset failure aborts before a task is created
func Build(cfg Config, d Deps) ([]engine.Task, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	frames, err := d.Store.LoadAll(constants.ShipFrame1, constants.ShipFrame2)
	if err != nil {
		return nil, fmt.Errorf("build spaceship: %w", err)
	}

	rows, cols := d.Canvas.Size()
	h1, w1 := frames[0].Size()
	h2, w2 := frames[1].Size()
	shipH, shipW := max(h1, h2), max(w1, w2)
	border := 2 * constants.ShipBorder
	if rows < shipH+border || cols < shipW+border {
		return nil, fmt.Errorf("%w: need %dx%d, have %dx%d", ErrSurfaceTooSmall, shipH+border, shipW+border, rows, cols)
	}

	midRow, midCol := rows/2, cols/2
	tasks := []engine.Task{
		task.NewFire(d.Canvas, float64(midRow), float64(midCol), d.Alerter).
			WithSpeed(cfg.FireRowSpeed, cfg.FireColSpeed),
		task.NewSpaceship(d.Canvas, d.Controls, rows-shipH-constants.ShipBorder, (cols-shipW)/2, frames[0], frames[1]),
	}
	for _, star := range task.NewStarfield(d.Canvas, d.Rand, cfg.Stars) {
		tasks = append(tasks, star)
	}

	log.Printf("scene: %d tasks on %dx%d surface", len(tasks), rows, cols)
	return tasks, nil
}
