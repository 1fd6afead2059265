// Package report renders diff results and keeps a history of them.
//
// Text writes the conflict-marker layout familiar from merge tools:
//
//	<<<<<<<<<<<<<<<
//	VEVENT
//	  UID: E1
//	  SUMMARY: Lunch
//	===============
//	VEVENT
//	  UID: E1
//	  SUMMARY: Dinner
//	>>>>>>>>>>>>>>>
//
// JSON writes the same pairs as RFC 8785 canonical JSON so that identical
// diffs always produce identical bytes. Store persists both through GORM.
package report
