/*
Package domain contains the core types shared by the search engine and its domain plug-ins.

It is kept pure and free of I/O, following the same hexagonal split as the rest of the module:
drivers live in internal/search, presentation and configuration live in their own packages.

# Key Entities

  - Problem: initial and goal configurations plus the successor, goal-test, heuristic and
    tie-break functions a domain supplies.
  - Result: the path found (or the partial path for local search), the terminal Status and
    expansion statistics.
  - Hooks: lifecycle callbacks fired on search start, on every expansion and on search end.
*/
package domain
