// Command negedge samples random directed graphs with negative edge
// weights and no negative-weight cycle, via the Markov-chain proposal loop
// implemented in package mcmc.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
