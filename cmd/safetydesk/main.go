// Safetydesk is the admin CLI for the safety-reporting system: browse,
// triage, edit, and export report records, or serve the reference REST
// backend.
package main

func main() {
	Execute()
}
