// Package utils provides small conversion helpers shared by the core
// packages, such as lenient integer parsing for property payloads.
package utils
