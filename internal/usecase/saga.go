package usecase

import (
	"context"
	"fmt"
	"log"
)

// Step é uma etapa do saga. Undo é opcional e só roda se Do já tiver concluído.
type Step struct {
	Name string
	Do   func(context.Context) error
	Undo func(context.Context) error
}

// Saga roda as etapas em ordem. Na primeira falha desfaz as etapas concluídas, da última para a
// primeira, e devolve o erro da etapa que falhou. No enqueue: create_delivery grava a entrega
// PENDING e publish_delivery publica; se o publish falhar, o Undo do create marca a entrega FAILED.
type Saga struct {
	steps []Step
}

func NewSaga(steps ...Step) *Saga {
	return &Saga{steps: steps}
}

func (s *Saga) Then(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

func (s *Saga) Run(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.Do(ctx); err != nil {
			undone := s.undo(ctx, s.steps[:i])
			return fmt.Errorf("etapa '%s' falhou: %w (%d etapa(s) desfeita(s))", step.Name, err, undone)
		}
	}
	return nil
}

// undo roda mesmo com o ctx da requisição cancelado: a compensação não pode ficar pela metade.
func (s *Saga) undo(ctx context.Context, done []Step) int {
	ctx = context.WithoutCancel(ctx)

	undone := 0
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Undo == nil {
			continue
		}
		if err := step.Undo(ctx); err != nil {
			log.Printf("⚠️ WARNING: Undo de '%s' falhou: %v (risco de inconsistência)", step.Name, err)
			continue
		}
		undone++
	}
	return undone
}
