package pulse

import "fmt"

func ExampleVariable() {
	count := NewVariable(0)

	count.Signal().Subscribe(func(v int) {
		fmt.Println(v)
	})

	count.Write(1)
	count.Write(2)

	// Output:
	// 0
	// 1
	// 2
}

func ExampleSink() {
	sink := NewSink[string]()

	sink.Signal().Subscribe(func(v string) {
		fmt.Println("got", v)
	})

	sink.Send("hello")

	// Output:
	// got hello
}

func ExampleMap() {
	celsius := NewVariable(20.0)

	Map[float64, float64](celsius, func(c float64) float64 {
		return c*9/5 + 32
	}).Subscribe(func(f float64) {
		fmt.Println(f)
	})

	celsius.Write(25)

	// Output:
	// 68
	// 77
}
