// Command bitpackdemo round-trips a file through a self-describing
// Huffman-coded bitstream: by default it builds a canonical Huffman
// table over the input's byte frequencies, self-encodes the table, then
// the byte count and the bytes themselves; -d reverses it.
package main

import (
	"bytes"
	"flag"
	"io/ioutil"
	"log"
	"math/big"
	"os"

	"github.com/dvyukov-labs/bitpack"
	"github.com/dvyukov-labs/bitpack/prefix"
)

func byteLess(a, b byte) bool { return a < b }

func writeByteSym(bw *bitpack.Writer, b byte) error {
	return bw.WriteBits(uint64(b), 8)
}

func readByteSym(br *bitpack.Reader) (byte, error) {
	v, err := br.ReadBits(8)
	return byte(v), err
}

func encode(data []byte, out *bytes.Buffer) error {
	freq := make(map[byte]int)
	for _, b := range data {
		freq[b]++
	}
	if len(freq) == 0 {
		freq[0] = 1
	}
	table, err := prefix.BuildHuffman(freq, byteLess)
	if err != nil {
		return err
	}
	length, err := prefix.NewNatural(8)
	if err != nil {
		return err
	}

	bw := bitpack.NewWriter(out)
	if err := table.WriteTable(bw, writeByteSym, nil); err != nil {
		return err
	}
	if err := length.Encode(bw, big.NewInt(int64(len(data)))); err != nil {
		return err
	}
	for _, b := range data {
		if err := table.Encode(bw, b); err != nil {
			return err
		}
	}
	return bw.Close()
}

func decode(in *bytes.Reader) ([]byte, error) {
	br := bitpack.NewReader(in)
	table, err := prefix.ReadHuffmanTable(br, readByteSym, nil)
	if err != nil {
		return nil, err
	}
	length, err := prefix.NewNatural(8)
	if err != nil {
		return nil, err
	}
	n, err := length.Decode(br)
	if err != nil {
		return nil, err
	}
	count := int(n.Int64())
	out := make([]byte, count)
	for i := 0; i < count; i++ {
		b, err := table.Decode(br)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func main() {
	inputFile := flag.String("i", "", "input file")
	outputFile := flag.String("o", "", "output file")
	decodeMode := flag.Bool("d", false, "decode instead of encode")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(0)
	}
	data, err := ioutil.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	var result []byte
	if *decodeMode {
		result, err = decode(bytes.NewReader(data))
	} else {
		var buf bytes.Buffer
		err = encode(data, &buf)
		result = buf.Bytes()
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := ioutil.WriteFile(*outputFile, result, 0777); err != nil {
		log.Fatal(err)
	}
}
