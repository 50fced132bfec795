// Copyright (c) 2025 Visvasity LLC

// Package input holds on-disk block types that are read and written in place
// through the generated conformance in input.podgen.go.
package input

//go:generate go run github.com/morr0ne/bytesagent -outdir . Checksum Header JournalRegion LinkedList SuperBlock

type DBA uint64

type LSN int64

type BlockType uint16

const (
	ZeroBlockType   BlockType = 0
	SuperBlockType  BlockType = 1
	ObjectBlockType BlockType = 2
)

var Magic = [4]byte{'P', 'O', 'D', '1'}

type Checksum [32]byte

type Header struct {
	Magic    [4]byte
	Type     BlockType
	Version  uint16
	Length   uint64
	Checksum uint32
	Reserved uint32
}

type JournalRegion struct {
	JournalOffset int64
	FileOffset    int64
	RegionSize    int64
}

type LinkedList struct {
	HeadDBA DBA

	NumValues     int64
	NumLinkBlocks int32
	NumFreeItems  int32
}

type SuperBlock struct {
	Header Header

	EndBlock  uint64
	SyncedLSN LSN

	ObjectList LinkedList

	Regions [4]JournalRegion

	Root Checksum
}

// The types below are rejected by the generator.

// Unaligned has three bytes of padding after Kind.
type Unaligned struct {
	Kind  uint8
	Value uint32
}

// Flagged holds a bool, which has invalid bit patterns.
type Flagged struct {
	Dirty bool
	Level [7]uint8
}

// Journal holds a slice header.
type Journal struct {
	Regions []JournalRegion
}
