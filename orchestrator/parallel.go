package orchestrator

import "sync"

// parseParallel parses every item in items through parse, preserving wire
// order in the returned slice regardless of completion order. Parsing is
// a pure function of each byte buffer (no shared mutable state between
// goroutines), so results can be written directly to their index without
// coordination beyond the WaitGroup. The first error encountered, by index,
// is returned; a parse failure on one message fails the whole batch.
func parseParallel[T any](items [][]byte, workers int, parse func([]byte) (T, error)) ([]T, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]T, len(items))
	errs := make([]error, len(items))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, data := range items {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, data []byte) {
			defer wg.Done()
			defer func() { <-sem }()

			v, err := parse(data)
			results[i] = v
			errs[i] = err
		}(i, data)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
