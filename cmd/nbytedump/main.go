package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/davejbax/go-nbyteint"
)

func main() {
	value := flag.String("value", "", "Integer value to encode")
	width := flag.Int("width", 4, "Field width in bytes (1-8)")
	order := flag.String("order", "little", "Byte order: little or big")
	signed := flag.Bool("signed", false, "Treat the value as signed")
	decode := flag.String("decode", "", "Hex bytes to decode instead of encoding, e.g. 'fffffe'")

	flag.Parse()

	if len(*value) == 0 && len(*decode) == 0 {
		flag.Usage()
		return
	}

	big := false
	switch *order {
	case "big":
		big = true
	case "little":
	default:
		log.Fatalf("unknown byte order %q", *order)
	}

	if len(*decode) > 0 {
		raw, err := hex.DecodeString(strings.ReplaceAll(*decode, " ", ""))
		if err != nil {
			log.Fatalf("invalid hex input: %v", err)
		}

		out, err := decodeBytes(raw, big, *signed)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(out)
		return
	}

	var v int64
	if *signed {
		parsed, err := strconv.ParseInt(*value, 0, 64)
		if err != nil {
			log.Fatalf("invalid value: %v", err)
		}
		v = parsed
	} else {
		parsed, err := strconv.ParseUint(*value, 0, 64)
		if err != nil {
			log.Fatalf("invalid value: %v", err)
		}
		v = int64(parsed)
	}

	raw, err := encodeValue(v, *width, big, *signed)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("% x\n", raw)
}

// encodeValue dispatches the runtime width and order to the matching field
// instantiation and returns the field's physical bytes.
func encodeValue(v int64, width int, big bool, signed bool) ([]byte, error) {
	if big {
		return encodeWidth[nbyteint.Big](v, width, signed)
	}

	return encodeWidth[nbyteint.Little](v, width, signed)
}

func encodeWidth[O nbyteint.ByteOrder](v int64, width int, signed bool) ([]byte, error) {
	switch width {
	case 1:
		return encode[[1]byte, O](v, signed), nil
	case 2:
		return encode[[2]byte, O](v, signed), nil
	case 3:
		return encode[[3]byte, O](v, signed), nil
	case 4:
		return encode[[4]byte, O](v, signed), nil
	case 5:
		return encode[[5]byte, O](v, signed), nil
	case 6:
		return encode[[6]byte, O](v, signed), nil
	case 7:
		return encode[[7]byte, O](v, signed), nil
	case 8:
		return encode[[8]byte, O](v, signed), nil
	default:
		return nil, fmt.Errorf("unsupported width %d: must be 1-8 bytes", width)
	}
}

func encode[A nbyteint.Buffer, O nbyteint.ByteOrder](v int64, signed bool) []byte {
	if signed {
		return arrayToSlice(nbyteint.New[int64, A, O](v).Bytes())
	}

	return arrayToSlice(nbyteint.New[uint64, A, O](uint64(v)).Bytes())
}

// decodeBytes reconstructs the logical value of a field from its physical
// bytes; the field width is the length of the input.
func decodeBytes(raw []byte, big bool, signed bool) (string, error) {
	if big {
		return decodeWidth[nbyteint.Big](raw, signed)
	}

	return decodeWidth[nbyteint.Little](raw, signed)
}

func decodeWidth[O nbyteint.ByteOrder](raw []byte, signed bool) (string, error) {
	switch len(raw) {
	case 1:
		return decode[[1]byte, O](raw, signed), nil
	case 2:
		return decode[[2]byte, O](raw, signed), nil
	case 3:
		return decode[[3]byte, O](raw, signed), nil
	case 4:
		return decode[[4]byte, O](raw, signed), nil
	case 5:
		return decode[[5]byte, O](raw, signed), nil
	case 6:
		return decode[[6]byte, O](raw, signed), nil
	case 7:
		return decode[[7]byte, O](raw, signed), nil
	case 8:
		return decode[[8]byte, O](raw, signed), nil
	default:
		return "", fmt.Errorf("unsupported width %d: must be 1-8 bytes", len(raw))
	}
}

func decode[A nbyteint.Buffer, O nbyteint.ByteOrder](raw []byte, signed bool) string {
	var stored A
	for k := 0; k < len(stored); k++ {
		stored[k] = raw[k]
	}

	if signed {
		var field nbyteint.Int[int64, A, O]
		field.SetBytes(stored)

		return field.String()
	}

	var field nbyteint.Int[uint64, A, O]
	field.SetBytes(stored)

	return field.String()
}

func arrayToSlice[A nbyteint.Buffer](stored A) []byte {
	out := make([]byte, 0, len(stored))
	for k := 0; k < len(stored); k++ {
		out = append(out, stored[k])
	}

	return out
}
