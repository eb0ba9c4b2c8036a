// Package scenarios carries the demonstration tests for the enum mapping
// pitfall walked through in the repository README. Each test builds its own
// configuration from scratch, the way the README tells the story.
package scenarios
