// Command win7notify shows desktop notifications from the command line or
// from a stream of requests on stdin.
package main

func main() {
	Execute()
}
