package bitpack_test

import (
	"bytes"
	"fmt"

	"github.com/dvyukov-labs/bitpack"
)

func ExampleWriter_WriteBits() {
	var b bytes.Buffer
	w := bitpack.NewWriter(&b)
	w.WriteBits(0x5, 3)
	w.WriteBits(0x0, 3)
	w.Close()
	fmt.Println(b.Bytes())
	// Output: [5]
}

func ExampleReader_ReadBits() {
	b := bytes.NewReader([]byte{0x05})
	r := bitpack.NewReader(b)
	v, err := r.ReadBits(3)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 5
}
