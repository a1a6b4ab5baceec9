// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads check thresholds and output settings from a JSON or
// YAML file. Without a file the defaults reproduce the classic behaviour:
// WARNING inside 30 days, CRITICAL for up to 30 days after expiry.
//
// Example YAML:
//
//	thresholds:
//	  warningDays: 21
//	  expiredWindowDays: 14
//	output:
//	  long: true
//	log:
//	  format: json
package config
