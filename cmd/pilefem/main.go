// Command pilefem is the thin orchestration-boundary CLI of spec §6/§1:
// it reads a JSON request on the shape of one of the six entry points,
// calls into package pilefem, and prints the JSON result. It carries no
// analysis logic of its own — a spec §5 read: no core state, no wire
// protocol, no persisted configuration, this is the only boundary where
// any of that could live, and even here it's limited to file I/O.
package main

func main() {
	Execute()
}
