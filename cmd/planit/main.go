// Command planit is the plan-it-ahead client: it searches through the API,
// stages results locally and saves them into server itineraries.
package main

func main() {
	Execute()
}
