// Command catplot computes and draws categorical statistics charts from
// CSV data.
package main

func main() {
	Execute()
}
