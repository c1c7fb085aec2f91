// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtoa

import "errors"

// ErrNotFinite is returned by the Checked entry points when asked to format
// NaN or ±Infinity, neither of which has a finite shortest-decimal
// representation. The unchecked entry points (Format, Append, String, ...)
// assume a finite input and produce unspecified output instead of returning
// this error.
var ErrNotFinite = errors.New("dtoa: value is not finite (NaN or Inf)")
