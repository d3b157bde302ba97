package cli

import (
	"github.com/zbalkan/fc/pkg/fc"
)

// FormatBlock writes one diff block to out in fc's traditional report
// style: a "***** path" marker bracketing each side's lines for a text
// block, or a single line for a binary byte-change or size block.
func FormatBlock(out *Output, ctx *fc.DiffContext, block fc.DiffBlock, showLineNumbers bool) {
	switch block.Kind {
	case fc.BlockChange, fc.BlockAdd, fc.BlockDelete:
		formatTextBlock(out, ctx, block, showLineNumbers)
	case fc.BlockByteChange:
		out.Printf("Offset %d: %s: %02X %s: %02X\n", block.Offset, ctx.Path1, block.ByteA, ctx.Path2, block.ByteB)
	case fc.BlockSize:
		out.Printf("FC: %s and %s differ in size: %d vs %d\n", ctx.Path1, ctx.Path2, block.SizeA, block.SizeB)
	}
}

func formatTextBlock(out *Output, ctx *fc.DiffContext, block fc.DiffBlock, showLineNumbers bool) {
	out.Printf("***** %s\n", ctx.Path1)
	printLines(out, ctx.A, block.StartA, block.EndA, showLineNumbers)
	out.Printf("***** %s\n", ctx.Path2)
	printLines(out, ctx.B, block.StartB, block.EndB, showLineNumbers)
	out.Println("*****")
}

func printLines(out *Output, seq *fc.LineSequence, start, end int, showLineNumbers bool) {
	for i := start; i < end; i++ {
		line := seq.At(i)

		if showLineNumbers {
			out.Printf("%d: %s\n", i+1, line.Text)
		} else {
			out.Printf("%s\n", line.Text)
		}
	}
}
