package main

import "fmt"

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	for _, topic := range deps.Catalog.Topics() {
		fmt.Fprintf(deps.Stdout, "/%s - %s\n", topic.Key, topic.Name)
		for _, sub := range topic.Subcategories {
			fmt.Fprintf(deps.Stdout, "    %s - %s\n", sub.Key, sub.Name)
		}
	}
	return nil
}
