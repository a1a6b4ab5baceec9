// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers backed by [bytebufferpool].
// The report renderer builds its status line in a pooled buffer instead of
// growing strings entry by entry.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
