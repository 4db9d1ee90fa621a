// Command bdiloader updates firmware, CPLD logic and network
// configuration on an Abatron BDI debug probe over its loader
// protocol, replacing bdisetup's -v/-e/-u/-c argv switch with cobra
// subcommands.
package main

func main() {
	Execute()
}
