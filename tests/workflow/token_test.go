package workflow_test

import (
	"sync"
	"testing"

	"github.com/amplitudeventures/vyve/internal/workflow"
)

func TestTokenStartsUncancelled(t *testing.T) {
	token := workflow.NewToken()
	if token.Cancelled() {
		t.Error("fresh token should not be cancelled")
	}
}

func TestTokenCancel(t *testing.T) {
	token := workflow.NewToken()
	token.Cancel()

	if !token.Cancelled() {
		t.Error("token should report cancellation")
	}

	// Idempotent.
	token.Cancel()
	if !token.Cancelled() {
		t.Error("repeated cancel should keep the token cancelled")
	}
}

func TestTokenConcurrentCancel(t *testing.T) {
	token := workflow.NewToken()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token.Cancel()
		}()
	}
	wg.Wait()

	if !token.Cancelled() {
		t.Error("token should be cancelled after concurrent cancels")
	}
}
