/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package watch reruns a function whenever one of a set of files changes
package watch

import (
	"context"
	"time"

	"github.com/dnote/ldiff/pkg/cli/log"
	"github.com/pkg/errors"
	"github.com/radovskyb/watcher"
)

// DefaultInterval is how often the files are polled for changes
const DefaultInterval = 250 * time.Millisecond

// Run calls onChange once, then again every time one of the files at paths
// is written, created, removed or renamed. It returns when ctx is done or
// when onChange returns an error, which is then returned.
func Run(ctx context.Context, paths []string, interval time.Duration, onChange func() error) error {
	if interval < time.Millisecond {
		return errors.Errorf("polling interval %s is too short", interval)
	}

	w := watcher.New()
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Write, watcher.Create, watcher.Remove, watcher.Rename, watcher.Move)

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			return errors.Wrapf(err, "watching %s", p)
		}
	}

	if err := onChange(); err != nil {
		return err
	}

	var result error
	finished := make(chan struct{})
	quit := make(chan struct{})

	go func() {
		defer close(finished)

		done := ctx.Done()
		stopping := false
		stop := func(err error) {
			if result == nil {
				result = err
			}
			if !stopping {
				stopping = true
				done = nil
				// Close is a no-op until Start is running, and then blocks until
				// the watcher loop receives it while that loop may itself be
				// blocked sending an event to us.
				go func() {
					w.Wait()
					w.Close()
				}()
			}
		}

		for {
			select {
			case event := <-w.Event:
				if stopping {
					continue
				}

				log.Debug("%s\n", event)
				if err := onChange(); err != nil {
					stop(err)
				}
			case err := <-w.Error:
				if err == watcher.ErrWatchedFileDeleted {
					log.Debug("%s\n", err)
					continue
				}

				stop(errors.Wrap(err, "watching files"))
			case <-done:
				stop(nil)
			case <-w.Closed:
				return
			case <-quit:
				return
			}
		}
	}()

	if err := w.Start(interval); err != nil {
		close(quit)
		<-finished

		return errors.Wrap(err, "starting the watcher")
	}

	<-finished

	return result
}
