// Command stackdemo runs scripted scenarios against the multistack, queue and
// shelter packages and prints what every operation returned.
package main

func main() {
	execute()
}
