package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleApplyCoefficientsInPlace() {
	buf := []float64{1, 1, 1, 1}
	if err := ApplyCoefficientsInPlace(buf, Generate(TypeHamming, len(buf))); err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f %.2f\n", buf[0], buf[1], buf[2], buf[3])
	// Output:
	// 0.08 0.77 0.77 0.08
}
