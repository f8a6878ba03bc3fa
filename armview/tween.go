// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armview

import (
	"time"

	"cogentcore.org/armviz/arm"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates all five joint angles from one pose to another over
// a duration, with an easing function. Call Update each frame.
type Tween struct {
	tweens [arm.JointsN]*gween.Tween

	// Target is the final pose.
	Target arm.Angles

	// Done is set when all the joints have reached the target.
	Done bool
}

// NewTween returns a new tween from the given pose to the target over the
// given duration, using the given easing function (ease.Linear if nil).
func NewTween(from, to arm.Angles, duration time.Duration, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	tw := &Tween{Target: to}
	secs := float32(duration.Seconds())
	for j := range arm.JointsN {
		tw.tweens[j] = gween.New(from.Get(j), to.Get(j), secs, fn)
	}
	return tw
}

// Update advances the tween by dt and returns the current pose.
// Once done it keeps returning the target.
func (tw *Tween) Update(dt time.Duration) arm.Angles {
	if tw.Done {
		return tw.Target
	}
	var a arm.Angles
	done := true
	secs := float32(dt.Seconds())
	for j, t := range tw.tweens {
		val, finished := t.Update(secs)
		a.Set(arm.Joints(j), val)
		if !finished {
			done = false
		}
	}
	tw.Done = done
	if done {
		return tw.Target
	}
	return a
}
