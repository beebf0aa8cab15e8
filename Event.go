/*
Copyright 2011-2024 Frederic Langlet
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

package bitrank

import (
	"fmt"
	"time"
)

const (
	EVT_BUILD_START       = 0 // Builder starts its forward pass
	EVT_L0_GROUP_FLUSHED  = 1 // A super-super-block (L0) group completed
	EVT_L12_BLOCK_FLUSHED = 2 // A super-block (L12) record was appended
	EVT_BUILD_END         = 3 // Builder finished, tables are valid
)

// Event a build-progress event emitted by index.Build.
type Event struct {
	eventType int
	id        int
	size      int64
	eventTime time.Time
	msg       string
}

// NewEventFromString creates a new Event instance that wraps a message.
func NewEventFromString(evtType, id int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, id: id, msg: msg, eventTime: evtTime}
}

// NewEvent creates a new Event instance carrying a running bit count.
func NewEvent(evtType, id int, size int64, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, id: id, size: size, eventTime: evtTime}
}

// Type returns the event type.
func (this *Event) Type() int {
	return this.eventType
}

// ID returns the id info (the L0 group index or L12 record index, or -1).
func (this *Event) ID() int {
	return this.id
}

// Time returns the time the event was created.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// Size returns the running bit-position the event was emitted at.
func (this *Event) Size() int64 {
	return this.size
}

// String returns a human readable representation of the event.
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EVT_BUILD_START:
		t = "BUILD_START"
	case EVT_L0_GROUP_FLUSHED:
		t = "L0_GROUP_FLUSHED"
	case EVT_L12_BLOCK_FLUSHED:
		t = "L12_BLOCK_FLUSHED"
	case EVT_BUILD_END:
		t = "BUILD_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"id\":%d, \"size\":%d, \"time\":%d }",
		t, this.id, this.size, this.eventTime.UnixNano()/1000000)
}

// Listener is implemented by build-progress observers.
type Listener interface {
	// ProcessEvent is called whenever the builder emits an event.
	ProcessEvent(evt *Event)
}
