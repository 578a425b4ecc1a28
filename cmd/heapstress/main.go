// heapstress exercises a heapkit heap with random allocation traffic.
package main

func main() {
	execute()
}
