package main

import "testing"

func TestDay1(t *testing.T) {
	checkExample(t, day1, `
199
200
208
210
200
207
240
269
260
263
`, "7", "5")
	checkError(t, day1, "199\nabc\n")
}
