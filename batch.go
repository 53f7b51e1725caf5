package arabizi

import (
	"context"
	"sync"
)

// defaultBatchWorkers bounds concurrent backend calls in ProcessBatch.
const defaultBatchWorkers = 4

// ProcessBatch processes independent text units concurrently. Units carry no
// ordering guarantee relative to each other; only the stages inside one unit
// are sequential. Results are indexed like texts.
//
// On cancellation the batch stops handing out work, unfinished units are
// discarded (their Result is the zero value), and ctx.Err() is returned.
func (p *Pipeline) ProcessBatch(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	workers := defaultBatchWorkers
	if len(texts) < workers {
		workers = len(texts)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := p.Process(ctx, texts[i])
				if err != nil {
					// Cancelled mid-flight: discard the unit.
					continue
				}
				results[i] = res
			}
		}()
	}

	done := false
	for i := range texts {
		if done {
			break
		}
		select {
		case <-ctx.Done():
			done = true
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if ctx.Err() != nil {
		return results, ctx.Err()
	}
	return results, nil
}
