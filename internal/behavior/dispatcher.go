package behavior

import (
	"fmt"
	"time"

	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/harrison/telegram-analyzer/internal/models"
)

// Paths holds the inputs of a batch, one per input kind.
type Paths struct {
	JSON   string // Exported chat JSON; also read as text by count-urls
	Folder string // Folder scanned by list-extensions
	File   string // Single file inspected by file-metadata
}

// For returns the path serving inputs of the given kind.
func (p Paths) For(kind models.InputKind) string {
	switch kind {
	case models.InputFolder:
		return p.Folder
	case models.InputFile:
		return p.File
	default:
		return p.JSON
	}
}

type constructor func(path string, opts display.RenderOptions, env Env) (Behavior, error)

// constructors is the dispatch table: exactly one entry per behavior type.
var constructors = map[models.BehaviorType]constructor{
	models.TypeURL: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewExtractURLs(path, env), nil
	},
	models.TypeURLCount: func(path string, opts display.RenderOptions, env Env) (Behavior, error) {
		return NewCountURLs(path, opts, env)
	},
	models.TypeTimeSlot: func(path string, opts display.RenderOptions, env Env) (Behavior, error) {
		return NewCountTimeSlots(path, opts, env)
	},
	models.TypeDaily: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewCountDaily(path, env), nil
	},
	models.TypeExtensions: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewListExtensions(path, 0, env), nil
	},
	models.TypeFileMetadata: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewFileMetadata(path, env), nil
	},
	models.TypeUserInteractions: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewUserInteractions(path, env), nil
	},
	models.TypeMessageStats: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewMessageStats(path, env), nil
	},
	models.TypeDiffusion: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewDiffusion(path, env), nil
	},
	models.TypeShares: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewShares(path, env), nil
	},
	models.TypeTextStats: func(path string, _ display.RenderOptions, env Env) (Behavior, error) {
		return NewTextStats(path, env), nil
	},
}

// New builds the behavior of type t reading path. opts only affects the
// format-aware behaviors (url-count, time-slot); the others ignore it.
func New(t models.BehaviorType, path string, opts display.RenderOptions, env Env) (Behavior, error) {
	build, ok := constructors[t]
	if !ok {
		return nil, fmt.Errorf("%w: unknown behavior type '%s'", ErrValidation, t)
	}
	return build(path, opts, env)
}

// All builds every behavior in declared type order, each reading the path of
// its input kind and rendering to the console.
func All(paths Paths, env Env) ([]Behavior, error) {
	console := display.RenderOptions{Format: display.FormatConsole}

	types := models.AllBehaviorTypes()
	behaviors := make([]Behavior, 0, len(types))
	for _, t := range types {
		b, err := New(t, paths.For(models.InputKindOf(t)), console, env)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", t, err)
		}
		behaviors = append(behaviors, b)
	}
	return behaviors, nil
}

// Group keeps the behaviors of type t, preserving order.
func Group(t models.BehaviorType, behaviors []Behavior) []Behavior {
	var selected []Behavior
	for _, b := range behaviors {
		if b.Type() == t {
			selected = append(selected, b)
		}
	}
	return selected
}

// RunBatch runs behaviors one after another and stops at the first failure,
// which is returned as a *BatchError. Behaviors after the failing one never
// run. An empty batch succeeds.
func RunBatch(runID, mode string, behaviors []Behavior, log Logger) (models.BatchResult, error) {
	if log == nil {
		log = nopLogger{}
	}

	batch := models.BatchResult{RunID: runID, Total: len(behaviors)}
	log.LogBatchStart(runID, mode, len(behaviors))
	start := time.Now()

	var batchErr error
	for i, b := range behaviors {
		index := i + 1
		log.LogBehaviorStart(index, len(behaviors), b.Name(), b.Input())

		result := runOne(index, b)
		if err := log.LogBehaviorResult(result); err != nil {
			log.LogWarn(fmt.Sprintf("failed to log result of %s: %v", b.Name(), err))
		}

		if result.Error != nil {
			batch.Failed = &result
			batchErr = &BatchError{Index: index, Name: b.Name(), Err: result.Error}
			break
		}
		batch.Completed++
	}

	batch.Duration = time.Since(start)
	log.LogBatchSummary(batch)
	return batch, batchErr
}

// runOne runs a single behavior and records its outcome.
func runOne(index int, b Behavior) models.BehaviorResult {
	start := time.Now()
	err := b.Run()

	result := models.BehaviorResult{
		Index:    index,
		Name:     b.Name(),
		Type:     b.Type(),
		Status:   models.StatusDone,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Status = models.StatusFailed
		result.Error = err
	}
	return result
}
