// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package programdata

import (
	"testing"

	"github.com/cielu/solana-dex-streamer/common"
)

const (
	progA = "11111111111111111111111111111111111111111"
	progB = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	progC = "So11111111111111111111111111111111111111112"
)

func TestBuild_SingleOuterNoInner(t *testing.T) {
	logs := []string{
		"Program " + progA + " invoke [1]",
		"Program data: aGVsbG8=",
		"Program " + progA + " success",
	}
	idx := Build(logs)

	item, ok := idx.GetOuter(0)
	if !ok {
		t.Fatalf("expected outer 0 to have a Program data item")
	}
	if item.Data != "aGVsbG8=" {
		t.Errorf("Data = %q, want aGVsbG8=", item.Data)
	}
	if item.ProgramID != common.StrToAddress(progA) {
		t.Errorf("ProgramID = %v, want %v", item.ProgramID, common.StrToAddress(progA))
	}
}

func TestBuild_OuterWithInnerSpans(t *testing.T) {
	logs := []string{
		"Program " + progA + " invoke [1]",
		"Program " + progB + " invoke [2]",
		"Program data: aW5uZXIw",
		"Program " + progB + " success",
		"Program " + progC + " invoke [2]",
		"Program data: aW5uZXIx",
		"Program " + progC + " success",
		"Program data: b3V0ZXI=",
		"Program " + progA + " success",
	}
	idx := Build(logs)

	outer, ok := idx.GetOuter(0)
	if !ok || outer.Data != "b3V0ZXI=" {
		t.Errorf("outer 0 = %+v, ok=%v, want Data=b3V0ZXI=", outer, ok)
	}

	inner0, ok := idx.GetInner(0, 0)
	if !ok || inner0.Data != "aW5uZXIw" {
		t.Errorf("inner(0,0) = %+v, ok=%v, want Data=aW5uZXIw", inner0, ok)
	}
	inner1, ok := idx.GetInner(0, 1)
	if !ok || inner1.Data != "aW5uZXIx" {
		t.Errorf("inner(0,1) = %+v, ok=%v, want Data=aW5uZXIx", inner1, ok)
	}
}

func TestBuild_MultipleOuterRoots(t *testing.T) {
	logs := []string{
		"Program " + progA + " invoke [1]",
		"Program data: b25l",
		"Program " + progA + " success",
		"Program " + progB + " invoke [1]",
		"Program data: dHdv",
		"Program " + progB + " success",
	}
	idx := Build(logs)

	first, ok := idx.GetOuter(0)
	if !ok || first.Data != "b25l" {
		t.Errorf("outer 0 = %+v, ok=%v", first, ok)
	}
	second, ok := idx.GetOuter(1)
	if !ok || second.Data != "dHdv" {
		t.Errorf("outer 1 = %+v, ok=%v", second, ok)
	}
}

func TestBuild_InvokeFailedStillClosesSpan(t *testing.T) {
	logs := []string{
		"Program " + progA + " invoke [1]",
		"Program data: b2s=",
		"Program " + progA + " failed: custom program error: 0x1",
	}
	idx := Build(logs)
	item, ok := idx.GetOuter(0)
	if !ok || item.Data != "b2s=" {
		t.Errorf("expected outer data to survive a failed invoke result, got %+v ok=%v", item, ok)
	}
}

func TestBuild_NoProgramDataLineIsNotFatal(t *testing.T) {
	logs := []string{
		"Program " + progA + " invoke [1]",
		"Program log: did something, no data line",
		"Program " + progA + " success",
	}
	idx := Build(logs)
	if _, ok := idx.GetOuter(0); ok {
		t.Errorf("expected no outer item when no Program data: line was logged")
	}
}

func TestIndex_OutOfRangeLookupsAreNotOk(t *testing.T) {
	var idx *Index
	if _, ok := idx.GetOuter(0); ok {
		t.Errorf("nil index GetOuter should report ok=false")
	}
	if _, ok := idx.GetInner(0, 0); ok {
		t.Errorf("nil index GetInner should report ok=false")
	}

	built := Build([]string{"Program " + progA + " invoke [1]", "Program " + progA + " success"})
	if _, ok := built.GetOuter(5); ok {
		t.Errorf("expected ok=false for an out-of-range outer index")
	}
	if _, ok := built.GetInner(0, 5); ok {
		t.Errorf("expected ok=false for an out-of-range inner index")
	}
}

func TestBuild_UnmatchedInvokeResultIsIgnored(t *testing.T) {
	logs := []string{
		"Program " + progA + " success", // no matching invoke; stack empty
		"Program " + progB + " invoke [1]",
		"Program data: ZGF0YQ==",
		"Program " + progB + " success",
	}
	idx := Build(logs)
	item, ok := idx.GetOuter(0)
	if !ok || item.Data != "ZGF0YQ==" {
		t.Errorf("expected the real span to still be indexed despite the leading unmatched success line, got %+v ok=%v", item, ok)
	}
}
