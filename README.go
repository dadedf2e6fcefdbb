/*

Package iterkit provides lazy, composable, pull-based iterator adapters.

The core of the package is the Iterator interface.
Every adapter wraps an upstream iterator and exposes the same pull interface,
so adapters compose into pipelines without eagerly materializing intermediate results.
A terminal operation like Collect, Count or ForEach drives the pipeline
by repeatedly calling Next on the outermost adapter,
and each call recursively pulls from its upstream only as needed, one element at a time.

	var iter iterkit.Iterator[int]
	iter = iterkit.Slice([]int{1, 2, 3, 4})
	iter = iterkit.Filter(iter, func(n int) bool { return n%2 == 0 })
	iter = iterkit.Map(iter, func(n int) int { return n + 5 })
	values := iterkit.Collect(iter)

Everything is single-threaded and synchronous,
there is no background goroutine or implicit parallelism in the core.
To stop a pipeline early, simply stop calling Next.

Iterators optionally support duplication.
CanCopy answers whether the whole upstream chain can be duplicated,
and Copy produces an instance with fully independent state.
Cycle uses this to choose between a copy-restart and a cache-replay strategy.

*/
package iterkit
