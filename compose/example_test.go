package compose_test

import (
	"fmt"
	"slices"

	"github.com/gogpu/emojigen/compose"
)

func ExampleTitle() {
	fmt.Println(compose.Title("party confetti"))
	fmt.Println(compose.Title("   "))

	// Output:
	// Party Confetti
	// Generated Emoji Vibes
}

func ExampleComposer_Bag() {
	bag := compose.Default().Bag("Sparkles!")
	fmt.Println(len(bag), slices.Contains(bag, "✨"))

	// Output:
	// 4 true
}
