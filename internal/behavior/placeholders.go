package behavior

import (
	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/harrison/telegram-analyzer/internal/models"
)

// Placeholder stands in for an analysis that has no implementation yet. Run
// prints a notice naming the input and succeeds so batches keep going.
type Placeholder struct {
	typ  models.BehaviorType
	name string
	path string
	env  Env
}

func newPlaceholder(typ models.BehaviorType, name, path string, env Env) *Placeholder {
	return &Placeholder{typ: typ, name: name, path: path, env: env.withDefaults()}
}

// NewUserInteractions returns the per-user interaction placeholder.
func NewUserInteractions(path string, env Env) *Placeholder {
	return newPlaceholder(models.TypeUserInteractions, "user-interactions", path, env)
}

// NewDiffusion returns the media and link diffusion placeholder.
func NewDiffusion(path string, env Env) *Placeholder {
	return newPlaceholder(models.TypeDiffusion, "diffusion", path, env)
}

// NewShares returns the placeholder for who shared which link or media.
func NewShares(path string, env Env) *Placeholder {
	return newPlaceholder(models.TypeShares, "shares", path, env)
}

// NewTextStats returns the text statistics placeholder.
func NewTextStats(path string, env Env) *Placeholder {
	return newPlaceholder(models.TypeTextStats, "text-stats", path, env)
}

func (p *Placeholder) Type() models.BehaviorType { return p.typ }
func (p *Placeholder) Name() string { return p.name }
func (p *Placeholder) Input() string { return p.path }

func (p *Placeholder) Run() error {
	display.NotImplemented(p.name, p.path).Display(p.env.Out)
	return nil
}
