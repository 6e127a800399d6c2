package proto

//go:generate protoc -I . --go_out=paths=source_relative:../gen/proto --go-grpc_out=paths=source_relative:../gen/proto fup/v1/fup.proto
