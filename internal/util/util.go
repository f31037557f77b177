//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package util provides some additional useful
// functions not available in GO
package util

import (
	"time"
)

// Abs - non branching Abs function for determine the absolute value of an int
func Abs(n int) int {
	y := n >> 31
	return (n ^ y) - y
}

// Min returns the smaller of the given integers
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of the given integers
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Nps calculates nodes per second from an uint64 and a duration.
// Allows zero duration by treating it as one nanosecond.
func Nps(nodes uint64, duration time.Duration) uint64 {
	ns := duration.Nanoseconds()
	if ns == 0 {
		ns = 1
	}
	return uint64(int64(nodes) * time.Second.Nanoseconds() / ns)
}
