// Package iterator implements the PUT message iterator: a read-only,
// forward-only cursor over the messages packed inside one PUT event.
//
// A PutMessageIterator is constructed once with a decompression policy,
// then Reset onto a buffer chain and driven with repeated calls to
// Advance. Each successful Advance positions the iterator on one message;
// its accessors read through cached offsets computed during that Advance,
// so repeated accessor calls after the first are O(1) or O(bytes copied).
//
//	it, _ := iterator.NewIterator(compress.PolicyAlways)
//	if err := it.Reset(chain, eventHeader, false); err != nil {
//	    return err
//	}
//	for {
//	    n, err := it.Advance()
//	    if err != nil {
//	        return err // iterator is now Invalid; dump it.DumpBlob for diagnostics
//	    }
//	    if n == 0 {
//	        break
//	    }
//	    // use it.Header(), it.LoadMessagePayload, ...
//	}
//
// # State machine
//
//	         Reset(ok)             Advance()==1            Advance()==0 or err
//	Invalid ─────────────► Ready ─────────────► OnMessage ─────────────► Invalid
//	   ▲                      │  Advance()==err     │                       │
//	   └── Clear() ───────────┴─────────────────────┘◄──── Advance() ───────┘
//
// An iterator is not safe for concurrent use by multiple goroutines. A
// single buffer chain may safely back multiple distinct iterators at once.
package iterator
