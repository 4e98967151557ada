// Copyright (c) 2025 Terse-Go and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slicesx

import (
	"fmt"
	"strconv"
)

func ExampleConcat() {
	fmt.Println(Concat([]int{1, 2, 3}, []int{4, 5, 6}))
	fmt.Println(Concat([]int{1, 2}, []int{3, 4, 5, 6, 7, 8}))
	// Output:
	// [1 2 3 4 5 6]
	// [1 2 3 4 5 6 7 8]
}

func ExampleMap() {
	fmt.Println(Map([]int{1, 2, 3}, strconv.Itoa))
	// Output: [1 2 3]
}

func ExampleFilter() {
	even := Filter([]int{1, 2, 3, 4}, func(n int) bool {
		return n%2 == 0
	})

	fmt.Println(even)
	// Output: [2 4]
}

func ExampleReduce() {
	sum := Reduce([]int{1, 2, 3, 4}, 0, func(acc, n int) int {
		return acc + n
	})

	fmt.Println(sum)
	// Output: 10
}
