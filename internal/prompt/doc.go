// Package prompt renders the decision prompt sent to the intent classifier.
package prompt
