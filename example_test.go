package toml_test

import (
	"fmt"

	toml "github.com/djoezeke/gotoml"
)

func ExampleParse() {
	root, err := toml.Parse([]byte(`name = "Alice"` + "\n"))
	if err != nil {
		panic(err)
	}
	k, err := toml.LookupPath(root, "name")
	if err != nil {
		panic(err)
	}
	s, _ := k.AsString()
	fmt.Println(s)
	// Output:
	// Alice
}

func ExampleDump() {
	root, _ := toml.Parse([]byte("title = \"My App\"\n"))
	out, err := toml.Dump(root)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
	// Output:
	// {
	//   "title": {
	//     "type": "string",
	//     "value": "My App"
	//   }
	// }
}

func ExampleLookupPath() {
	root, _ := toml.Parse([]byte("[server]\nhost = \"localhost\"\nport = 8080\n"))
	k, err := toml.LookupPath(root, "server.host")
	if err != nil {
		panic(err)
	}
	s, _ := k.AsString()
	fmt.Println(s)
	// Output:
	// localhost
}

func ExampleKey_Delete() {
	root, _ := toml.Parse([]byte("a = 1\nb = 2\nc = 3\n"))
	root.Delete("b")
	fmt.Print(toml.Format(root))
	// Output:
	// a = 1
	// c = 3
}

func ExampleKey_Set() {
	root, _ := toml.Parse([]byte("a = 1\n"))
	if err := root.Set("b", toml.NewInteger(2)); err != nil {
		panic(err)
	}
	fmt.Print(toml.Format(root))
	// Output:
	// a = 1
	// b = 2
}

func ExampleFormat() {
	root, _ := toml.Parse([]byte("[database]\nport = 5432\n"))
	fmt.Print(toml.Format(root))
	// Output:
	// [database]
	// port = 5432
}

func ExampleKey_AsInt() {
	root, _ := toml.Parse([]byte("count = 1_000\n"))
	k, _ := toml.LookupPath(root, "count")
	v, _ := k.AsInt()
	fmt.Println(v)
	// Output:
	// 1000
}

func ExampleNewString() {
	v := toml.NewString("hello world")
	root := toml.NewRoot()
	_ = root.Set("greeting", v)
	fmt.Print(toml.Format(root))
	// Output:
	// greeting = "hello world"
}

func ExampleFromTaggedJSON() {
	tagged := map[string]any{
		"title": map[string]any{"type": "string", "value": "gotoml"},
	}
	root, err := toml.FromTaggedJSON(tagged)
	if err != nil {
		panic(err)
	}
	fmt.Print(toml.Format(root))
	// Output:
	// title = "gotoml"
}
