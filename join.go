// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package enum

import (
	"fmt"
	"strings"
)

// Join renders every element with [fmt.Sprint] and concatenates the
// renderings separated by sep.
func Join[T any](e Enumerable[T], sep string) string {
	return MapJoin(e, sep, sprint[T])
}

func sprint[T any](v T) string { return fmt.Sprint(v) }

// MapJoin renders every element with fn and concatenates the renderings
// separated by sep, in one traversal.
func MapJoin[T any](e Enumerable[T], sep string, fn func(T) string) string {
	var b strings.Builder
	first := true
	terminal(e.Reduce(Continue(nil), func(v T, _ Erased) Acc {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(fn(v))
		return Continue(nil)
	}))
	return b.String()
}
