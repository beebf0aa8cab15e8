/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	bitrank "github.com/succinctds/bitrank"
)

// BuildPrinter is a bitrank.Listener that reports construction progress to
// a writer. It plays the same diagnostic role kanzi's InfoPrinter plays for
// compression events, adapted to the four build-lifecycle events index.Build
// emits instead of kanzi's entropy/transform stage events.
type BuildPrinter struct {
	out   *bufio.Writer
	lock  sync.Mutex
	start time.Time
}

// NewBuildPrinter creates a BuildPrinter writing to w.
func NewBuildPrinter(w io.Writer) *BuildPrinter {
	return &BuildPrinter{out: bufio.NewWriter(w)}
}

// ProcessEvent implements bitrank.Listener.
func (this *BuildPrinter) ProcessEvent(evt *bitrank.Event) {
	this.lock.Lock()
	defer this.lock.Unlock()

	switch evt.Type() {
	case bitrank.EVT_BUILD_START:
		this.start = evt.Time()
		fmt.Fprintln(this.out, "building index ...")

	case bitrank.EVT_L0_GROUP_FLUSHED:
		fmt.Fprintf(this.out, "  L0 group %d flushed at bit %s\n", evt.ID(), humanize.Comma(evt.Size()))

	case bitrank.EVT_L12_BLOCK_FLUSHED:
		if evt.ID()%4096 == 0 {
			fmt.Fprintf(this.out, "  L12 record %s flushed at bit %s\n",
				humanize.Comma(int64(evt.ID())), humanize.Comma(evt.Size()))
		}

	case bitrank.EVT_BUILD_END:
		elapsed := evt.Time().Sub(this.start)
		fmt.Fprintf(this.out, "index built: %s bits in %s\n", humanize.Comma(evt.Size()), elapsed)
	}

	this.out.Flush()
}
