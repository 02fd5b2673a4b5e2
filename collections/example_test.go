package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-arrayy/collections"
)

func ExampleNew() {
	c := collections.New("foo bar", "UTF-8")
	fmt.Println(c.Count(), c)
	// Output: 2 foo bar,UTF-8
}

func ExampleCollection_Get() {
	c, _ := collections.FromJSON(`{"user":{"name":"Ada","tags":["math","poetry"]}}`)
	fmt.Println(c.Get("user.name"))
	fmt.Println(c.Get("user.tags.1"))
	fmt.Println(c.Get("user.email", "n/a"))
	// Output:
	// Ada
	// poetry
	// n/a
}

func ExampleCollection_Filter() {
	s, _ := collections.New(1, 2, 3, 4).
		Filter(func(v, _ any) bool { return v.(int)%2 != 0 }).
		ToJSON()
	fmt.Println(s)
	// Output: {"0":1,"2":3}
}

func ExampleCollection_SortValueKeepIndex() {
	c := collections.MustFrom(map[int]any{1: "hcd", 3: "bce", 2: "bcd", 100: "abc", 99: "aaa"})
	s, _ := c.SortValueKeepIndex(collections.Desc).ToJSON()
	fmt.Println(s)
	// Output: {"1":"hcd","3":"bce","2":"bcd","100":"abc","99":"aaa"}
}

func ExampleCollection_Split() {
	parts, _ := collections.MustFrom(map[string]any{"a": 1, "b": 2}).Split(2, true)
	s, _ := parts.ToJSON()
	fmt.Println(s)
	// Output: [{"a":1},{"b":2}]
}

func ExampleCollection_MergeAppendNewIndex() {
	a := collections.New(1, 2).Set("k", "a")
	b := collections.New(3).Set("k", "b")
	s, _ := a.MergeAppendNewIndex(b).ToJSON()
	fmt.Println(s)
	// Output: {"0":1,"1":2,"k":"b","2":3}
}

func ExampleCollection_FilterBy() {
	users, _ := collections.FromJSON(`[{"name":"ann","age":17},{"name":"bob","age":42}]`)
	adults, _ := users.FilterBy("age", 18, collections.OpGe)
	fmt.Println(adults.GetColumn("name", ""))
	// Output: bob
}

func ExampleCollection_Average() {
	fmt.Println(collections.New(-9, 1, 0, false).Average(1))
	fmt.Println(collections.New(-9, -8, -7, 1.32).Average(2))
	// Output:
	// -2
	// -5.67
}

func ExampleCollection_Implode() {
	s, _ := collections.New(1, []any{2, 3}, "x").Implode("|")
	fmt.Println(s)
	// Output: 1|2|3|x
}

func ExampleRange() {
	c, _ := collections.Range(22, 11, 2)
	fmt.Println(c)
	// Output: 22,20,18,16,14,12
}

func ExampleZip() {
	pairs := collections.Zip(collections.New("a", "b"), collections.New(1, 2))
	for _, p := range pairs.Iter() {
		s, _ := p.(*collections.Collection).Implode("=")
		fmt.Println(s)
	}
	// Output:
	// a=1
	// b=2
}

func ExampleCollection_When() {
	n := collections.New(1, 2, 3).
		When(true, func(c *collections.Collection) *collections.Collection {
			return c.Push(4)
		}).
		Count()
	fmt.Println(n)
	// Output: 4
}

func ExampleRegisterMacro() {
	collections.RegisterMacro("double", func(c *collections.Collection, _ ...any) any {
		return c.Map(func(v any) any { return v.(int) * 2 })
	})
	defer collections.UnregisterMacro("double")

	res, _ := collections.New(1, 2, 3).Macro("double")
	fmt.Println(res)
	// Output: 2,4,6
}
