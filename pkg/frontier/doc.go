/*
Package frontier provides the containers search drivers pull work from.

  - Queue: first-in first-out, used by breadth-first search.
  - PriorityQueue: binary min-heap ordered by a caller supplied less function, used by A*.

Both are single-goroutine data structures; each search owns its own frontier.
*/
package frontier
