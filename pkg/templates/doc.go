// Package templates holds the community-health file bodies and renders them
// from a prompt.AnswerSet.
//
// Bodies are embedded text/template files under bodies/. Apart from the
// substitution points they are reproduced byte for byte. Rendering is pure:
// the same answers always produce the same bytes.
package templates
