// Package spamdetector holds the wire contract of the SpamDetector gRPC service.
package spamdetector

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative spam_detector.proto
