package c

// Template is the fixed C source pattern every emitted program is
// substituted into (spec §6.2). __TAPE_SIZE__ and __CODE__ are the only two
// placeholders; the template owns tape allocation/free and defines every
// macro the generator invokes. ofs is always 0 in this release -- it is
// reserved for a future peephole pass that folds constant pointer offsets
// into the macro call instead of a SELECT.
const Template = `#include <stdio.h>
#include <stdlib.h>

#define ADJUST(ofs, delta) (tape[dp + (ofs)] += (delta))
#define SELECT(delta) (dp += (delta))
#define READ(ofs) (tape[dp + (ofs)] = (unsigned char)getchar())
#define WRITE(ofs) (putchar(tape[dp + (ofs)]), fflush(stdout))
#define OPEN() while (tape[dp]) {
#define CLOSE() }
#define SET(ofs, val) (tape[dp + (ofs)] = (val))
#define SCAN_LEFT() while (dp > 0 && tape[dp]) dp--
#define SCAN_RIGHT() while (dp < TAPE_SIZE - 1 && tape[dp]) dp++

#define TAPE_SIZE __TAPE_SIZE__

int main(void) {
    unsigned char *tape = calloc(TAPE_SIZE, sizeof(unsigned char));
    if (!tape) {
        fprintf(stderr, "bfx: could not allocate tape\n");
        return 1;
    }
    size_t dp = 0;

__CODE__

    free(tape);
    return 0;
}
`
