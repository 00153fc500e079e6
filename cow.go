/*
Package cow is the root of a module of containers with copy-on-write storage.

Copy-on-write containers are cheap to copy: a copy shares the storage of the
original, and only the first modification through one of the copies gives it
storage of its own. Clients see value semantics, i.e. no container ever
observes a modification made through another container, while paying for a
deep copy only if it is really needed.

Sub-package vector contains a resizable random-access vector; sub-package maybe
contains optional values returned by container accessors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cow
