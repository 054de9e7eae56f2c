// Package testutil provides shared fixtures for commhealth tests.
//
// Key components:
//   - SampleAnswers / AnswerLines: a complete answer set and its line input
//   - NewMemRoot: an afero.MemMapFs with the destination root created
//   - ListTree: relative directory and file listing of a tree
//   - FailingFs: an afero.Fs wrapper that injects errors on chosen paths
package testutil
