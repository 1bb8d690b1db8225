package model

// Package model defines the data structures shared by the pipeline and its
// shells: download requests, conversion profiles, process results, pipeline
// runs with their stage and status enums, and the sentinel errors of the
// failure taxonomy.
