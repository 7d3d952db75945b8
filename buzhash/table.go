// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package buzhash

// baseTable is the fixed 256-entry constant table that every derived Table
// is built from (Table[i] = baseTable[i] ^ seed). Values are arbitrary but
// fixed: changing them changes every chunk boundary ever produced by this
// package, so they must never be regenerated in place.
//
// The table intentionally does not have 50/50 bit balance per position; this
// mirrors the reference buzhash tables used by content-defined chunkers in
// the wild and is not a bug.
var baseTable = [256]uint32{
	0x8a8eeb12, 0x2ef94f1a, 0x5aa9dd23, 0x6595f2eb, 0x9375c031, 0x22f75a2a,
	0x5cc6bd1d, 0x4e736d3b, 0xd9faefd8, 0x258c19a4, 0x6992a421, 0xa9fd3cec,
	0xb4e6ed73, 0x49f12cd1, 0x852bd6aa, 0x79206c1b, 0xe08eeef1, 0x9ef2355a,
	0x9503776f, 0xd0bd1ae4, 0xffed9d60, 0x9c9f20be, 0xfca8235b, 0xb4a4d477,
	0xbe1f5654, 0x6acbce02, 0x07c4b95e, 0x57a9c857, 0x1870cd70, 0xe18753f5,
	0x83e9752a, 0xc90035aa, 0xcfc70b87, 0x21934849, 0xc96f02e5, 0x2cbd1199,
	0xd4da2a8a, 0xcf9e1d80, 0x500e890c, 0x7d8dbe26, 0x568fb683, 0x601a8a7f,
	0x795258d8, 0xd314011c, 0x9c410d96, 0xd0c01e19, 0x22db3038, 0x0fc2aa02,
	0x4b103b4e, 0xb0ecd510, 0x5796c42d, 0x45db0c4f, 0x4827ef52, 0x7f3bd420,
	0xe1917558, 0xe09ded96, 0x76c81d97, 0x429d19d9, 0x173b575c, 0x233c0283,
	0x41e2489c, 0x73854401, 0xd389d623, 0xaa9b5f0a, 0x71b0c8f5, 0xb405f553,
	0xe490e603, 0x0da874d0, 0x596e4d85, 0x68919fa8, 0x9cb44977, 0x997df5cc,
	0xd0f7f07e, 0xec6d7134, 0xd54f1791, 0xf9a375e1, 0x4b0b76d2, 0xede5614f,
	0x33c5e496, 0x7fd2b539, 0x280135f1, 0x80f5ab67, 0xf57d21db, 0x2e4eb2da,
	0xc9e28ffd, 0x238e78ac, 0x184dd0d2, 0xa3a5e329, 0x024ced50, 0x72b13cb3,
	0xea9e7ba9, 0x3f831b67, 0x5e06a37c, 0xc91b84df, 0x13785417, 0x4b54e6b7,
	0x608f4636, 0xa61d67b4, 0x0a46ef3c, 0x070ce3f2, 0x623be631, 0x4e73671e,
	0x43039a8c, 0x34302913, 0x20fc8e3a, 0x018409f9, 0x75a582fe, 0xd648dbc5,
	0xed017f3a, 0xf5a0cb07, 0x9f39116d, 0x63eefb79, 0x66a63b38, 0x238e556c,
	0xbdaa77a7, 0x03ca76d9, 0x0b57b2d9, 0x5968638a, 0x72bc2310, 0x3028d10b,
	0xbac36c75, 0x91e5165c, 0x66801936, 0x87cf0145, 0x09b3be96, 0x5e151915,
	0x65ed2ee4, 0xb331fe07, 0xfed19e10, 0x81270a1b, 0xa2b99ca8, 0x7b8e9204,
	0x6eae0296, 0x5835ed3b, 0x3d59d8ae, 0x14ef17e4, 0x54bc3337, 0x06fab36d,
	0x2b0241fc, 0x5a09fa62, 0xf3134726, 0x6ed2897b, 0x104aff9a, 0xfbf0ec8b,
	0x2bbde139, 0x77212855, 0xdc1654ea, 0x9d4e6812, 0x1d7599fa, 0xb638e598,
	0xe4538947, 0xe37c8827, 0xd615906f, 0x97815363, 0x90e8077c, 0xedc29ab0,
	0x7608786a, 0x83478640, 0x6a3f653f, 0x6f5cd101, 0x3df1d9ac, 0xe6162237,
	0x53fa69c7, 0xc0442b34, 0x97982c2d, 0xdd30eec1, 0x67694264, 0xb85a758d,
	0x7a123cec, 0xee5cc57c, 0xbb899be8, 0xc500c71d, 0xae7e1021, 0x111efabf,
	0xad259a7f, 0x5f39588d, 0x2ef38411, 0xd6021d32, 0x1e0d7035, 0xd68947b1,
	0x4fb071d9, 0x2bc46143, 0xd237eba9, 0x726b7dca, 0x2de75c93, 0x4cdd2684,
	0xd720dc29, 0xcffff0c6, 0x05ccd67d, 0xf1bcdbd4, 0xf48e276d, 0xc91bf31e,
	0x80c91aff, 0xb5701725, 0x2ef423a3, 0xbd03933d, 0x7cd2e480, 0xfffee1f1,
	0x30a7ea1e, 0xf19f05bb, 0xe9f3559d, 0xf2bdf8c4, 0xa3c42d6a, 0xe1ff9d50,
	0xbe920ad2, 0xf3b3a6f4, 0x4b87ef52, 0xca103602, 0xa8a34356, 0xf55de236,
	0x8717649f, 0x881da065, 0x8efd6397, 0xe9e80cc3, 0x0259c5d9, 0xf30521ab,
	0x962ae282, 0x59380b56, 0xa702207b, 0x27607399, 0x58d66cd7, 0x06d24790,
	0x689fab1a, 0x717ae881, 0x9f1c76de, 0x8ca9eebe, 0x6b9ebc4e, 0x1675923f,
	0xf3a7f182, 0x73236790, 0xcfe48749, 0xb5e62918, 0x8ce39352, 0x41b5b7b1,
	0xf8ddd3cd, 0xeadce973, 0xee6eae35, 0x577c4a54, 0xfb4f7484, 0x32fc13da,
	0x253566dd, 0x874d1961, 0x6631633f, 0x8bf84d4e, 0xdf111b05, 0x78f2fbac,
	0x87a64f9d, 0x88afce00, 0xb44da394, 0xd14e8be3, 0x6a85ea07, 0x9a35b40a,
	0x48f08bea, 0x928772e6, 0xd9b5707d, 0x4e5e647c,
}
