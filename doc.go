// Package prefixcode implements static Huffman prefix codes over arbitrary
// symbol alphabets, together with a small self-describing container for
// persisting an encoded sequence alongside its code table.
//
// The pipeline is FrequencyTable → BuildTree → CodeTable → Encoder →
// Payload.  Decoder inverts an encoded bit sequence given the same
// CodeTable, and Payload.MarshalBinary / ReadPayload move the whole thing
// to and from bytes.
//
// Ties between equal weights are broken by creation order, so the same
// FrequencyTable always yields the same CodeTable.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package prefixcode
