package placeholder_test

import (
	"fmt"

	"github.com/lwmacct/260826-go-pkg-placeholder/pkg/placeholder"
)

// Example_render 演示基本的占位符替换。
func Example_render() {
	values := map[string]string{
		"greet": "Hello",
		"name":  "Homer",
		"food":  "Donuts",
	}

	output, _ := placeholder.Render("<h1>{greet} {name}</h1><p>Do you like {food}?</p>", values)
	fmt.Println(output)

	// Output:
	// <h1>Hello Homer</h1><p>Do you like Donuts?</p>
}

// Example_render_escaped 演示 "{{name}" 字面量语义。
func Example_render_escaped() {
	output, _ := placeholder.Render("Hello {{middle} w{{orld", nil)
	fmt.Println(output)

	// Output:
	// Hello {{middle} w{{orld
}

// Example_render_missing 演示缺少取值时的错误。
func Example_render_missing() {
	values := map[string]string{"greet": "Hello"}

	_, err := placeholder.Render("<h1>{greet} {name}</h1>", values)
	fmt.Println(err)

	// Output:
	// placeholder: name: no value provided
}
