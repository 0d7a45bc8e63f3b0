package reginfer_test

import (
	"fmt"

	"github.com/KromDaniel/reginfer/pkg/reginfer"
)

func ExampleStringToRegex() {
	fmt.Println(reginfer.StringToRegex("apple"))
	fmt.Println(reginfer.StringToRegex("X99!!"))
	// Output:
	// [a-z]{5}
	// [A-Z]\d{2}!{2}
}

func ExampleMergeRegexPatterns() {
	patterns := reginfer.SlidingWindowRegex([]string{"apple", "banana", "apricot"})
	fmt.Println(reginfer.MergeRegexPatterns(patterns))
	// Output:
	// ^[a-z]{5,7}$
}

func ExampleInfer() {
	result := reginfer.Infer([]string{"2024-01-15", "1999-12-31", "X99!!"})
	fmt.Println(result.Merged)

	re, err := result.Compile()
	if err != nil {
		panic(err)
	}
	fmt.Println(re.MatchString("2025-10-05"))
	// Output:
	// ^\d{4}-\d{2}-\d{2}|\d{4}-\d{2}-\d{2}|[A-Z]\d{2}!{2}$
	// true
}
