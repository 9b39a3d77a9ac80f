/*
Package trie implements a radix trie over jamo byte strings, mapping
vocabulary words to 32-bit identifiers.

The trie has two shapes. Builder is the mutable editing tree used while
a vocabulary is assembled. Freeze linearizes it into a Trie, a single
contiguous byte buffer (the serialized node array) laid out for one
indirection per descent; a Trie answers lookups and prefix queries but
cannot be edited. Trie.Builder reconstructs the editing tree from the
buffer when a frozen vocabulary needs amending.

Serialized node array layout, little-endian:

	[ root children count : u8 ]
	repeated, siblings contiguous:
	  [ children count : u8 ]
	  [ payload : u32 ]   leaf id when children count is 0,
	                      else byte offset from this node to its first child
	  [ edge label bytes ] [ 0x00 ]

Edge labels are drawn from the HangulString alphabet {1..51, 29}, so the
zero byte is free to terminate them.
*/
package trie
